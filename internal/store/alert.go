package store

import "murmur/internal/models"

// AlertState holds the transient notification shown by the view.
type AlertState struct {
	IsOpen bool
	Alert  *models.Alert
}

type setAlert struct {
	alert models.Alert
}

type removeAlert struct{}

func (setAlert) isAction()    {}
func (removeAlert) isAction() {}

func reduceAlert(st AlertState, a Action) AlertState {
	switch act := a.(type) {
	case setAlert:
		alert := act.alert
		st.IsOpen = true
		st.Alert = &alert
	case removeAlert:
		st.IsOpen = false
		st.Alert = nil
	}
	return st
}

// SetAlert raises a notification for the view to consume.
func (s *Store) SetAlert(alert models.Alert) {
	s.dispatch(setAlert{alert: alert})
}

// RemoveAlert clears the current notification.
func (s *Store) RemoveAlert() {
	s.dispatch(removeAlert{})
}

// alertFrom builds the alert for a failed mutation. When the server supplied
// a message it is surfaced verbatim, otherwise a generic retry prompt.
func alertFrom(err error, fallback string) models.Alert {
	message := fallback
	if apiErr, ok := asAPIError(err); ok && apiErr.Status != 0 && apiErr.Message != "" {
		message = apiErr.Message
	}
	return models.Alert{
		Message:  message,
		Severity: models.SeverityError,
		Duration: defaultAlertDuration,
	}
}
