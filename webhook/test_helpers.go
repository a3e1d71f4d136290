package webhook

import "github.com/stretchr/testify/mock"

// MatchEntry creates a custom matcher for log entry arguments in mocks
func MatchEntry(matcher func(LogEntry) bool) interface{} {
	return mock.MatchedBy(matcher)
}
