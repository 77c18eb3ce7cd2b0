// Package utils provides type conversion helpers for loosely typed values,
// such as those decoded from JSON or read from Viper.
package utils
