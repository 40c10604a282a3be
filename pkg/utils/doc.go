// Package utils holds small leaf packages shared by the CLI and the services:
//
//   - logging: the leveled logrus logger of one invocation
//   - notify: coloured user-facing messages
//   - timer: command and stage durations
package utils
