package roomsim

import "github.com/sirupsen/logrus"

// NewLogger returns an entry of the standard logrus logger tagged with
// its domain, e.g. "simulation".
func NewLogger(domain string) *logrus.Entry {
	return logrus.WithField("domain", domain)
}
