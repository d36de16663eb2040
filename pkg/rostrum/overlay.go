package rostrum

import "log/slog"

// Overlay tracks the modal and drawer panels layered above the page.
// At most one of each is open at a time; opening a new one replaces the old.
// Every page activation closes both, so transient UI never survives a
// navigation.
//
// Overlay satisfies the page.Overlay contract: closing when nothing is open
// is a no-op.
type Overlay struct {
	modal  string
	drawer string
	logger *slog.Logger
}

// NewOverlay creates an Overlay with nothing open.
func NewOverlay(logger *slog.Logger) *Overlay {
	return &Overlay{logger: logger}
}

// ShowModal opens the modal identified by id, replacing any open modal.
func (o *Overlay) ShowModal(id string) {
	o.modal = id
	if o.logger != nil {
		o.logger.Debug("modal opened", "id", id)
	}
}

// CloseModal dismisses the open modal. No-op if none is open.
func (o *Overlay) CloseModal() {
	if o.modal == "" {
		return
	}
	if o.logger != nil {
		o.logger.Debug("modal closed", "id", o.modal)
	}
	o.modal = ""
}

// ModalOpen reports whether a modal is open.
func (o *Overlay) ModalOpen() bool {
	return o.modal != ""
}

// ActiveModal returns the id of the open modal, or "".
func (o *Overlay) ActiveModal() string {
	return o.modal
}

// ShowDrawer opens the drawer identified by id, replacing any open drawer.
func (o *Overlay) ShowDrawer(id string) {
	o.drawer = id
	if o.logger != nil {
		o.logger.Debug("drawer opened", "id", id)
	}
}

// CloseDrawer dismisses the open drawer. No-op if none is open.
func (o *Overlay) CloseDrawer() {
	if o.drawer == "" {
		return
	}
	if o.logger != nil {
		o.logger.Debug("drawer closed", "id", o.drawer)
	}
	o.drawer = ""
}

// DrawerOpen reports whether a drawer is open.
func (o *Overlay) DrawerOpen() bool {
	return o.drawer != ""
}

// ActiveDrawer returns the id of the open drawer, or "".
func (o *Overlay) ActiveDrawer() string {
	return o.drawer
}
