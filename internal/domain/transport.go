package domain

import "fmt"

// Transport holds the parameters for the user-level SSHFS channel to the
// device. The debug bridge does not use it.
type Transport struct {
	Host string
	Port int
	User string
}

func (t Transport) Target(remoteRoot string) string {
	return fmt.Sprintf("%s@%s:%s", t.User, t.Host, remoteRoot)
}

func (t Transport) Valid() bool {
	return t.Host != "" && t.User != "" && t.Port > 0
}
