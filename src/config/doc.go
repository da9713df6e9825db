// Package config defines the configuration shared by the nistparam parsers.
//
// The Config object can be built with NewDefaultConfig, or decoded from a
// viper instance owned by the caller with FromViper. It only controls logging;
// the byte formatting itself has no options.
package config
