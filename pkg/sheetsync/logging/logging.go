// Package logging configures the process logger.
package logging

import "go.uber.org/zap"

// New builds a sugared zap logger. JSON output targets machine
// consumption; console output is for interactive use.
func New(jsonOutput bool) (*zap.SugaredLogger, error) {
	var l *zap.Logger
	var err error
	if jsonOutput {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
