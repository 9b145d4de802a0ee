//go:build !debug
// +build !debug

package voxeltrace

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
