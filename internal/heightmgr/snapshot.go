package heightmgr

// savedView pairs a window with the view it had before a resize.
type savedView struct {
	win  Window
	view View
}

// captureViews snapshots every window of the current tab. Windows
// whose view cannot be read are skipped.
func (m *Manager) captureViews() []savedView {
	tab := m.host.CurrentTab()
	if tab == nil {
		return nil
	}
	wins := tab.Windows()
	snaps := make([]savedView, 0, len(wins))
	for _, w := range wins {
		v, err := w.View()
		if err != nil {
			m.log.Warn("capture window view", "error", err)
			continue
		}
		snaps = append(snaps, savedView{win: w, view: v})
	}
	return snaps
}

// restoreViews reapplies captured views. Restoration is best-effort
// per window; one failure never blocks the remaining windows.
func (m *Manager) restoreViews(snaps []savedView) {
	for _, s := range snaps {
		if err := s.win.SetView(s.view); err != nil {
			m.log.Warn("restore window view", "error", err)
		}
	}
}
