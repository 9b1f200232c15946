package model

type ChatStatus string

const (
	ChatStatusStopped ChatStatus = "stopped"
	ChatStatusActive  ChatStatus = "active"
)

func (s ChatStatus) Valid() bool {
	return s == ChatStatusStopped || s == ChatStatusActive
}
