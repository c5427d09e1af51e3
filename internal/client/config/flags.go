package config

import "flag"

// FlagSet returns flags bound to c. Defaults are the values c holds when
// FlagSet is called, so parsing only overrides what was given explicitly.
//
// Supported flags:
//
//	-a string     API base URL
//	-d string     path of the local sqlite database
//	-t duration   request timeout (e.g. 10s)
//	-i duration   online check interval (e.g. 15s)
//	-l string     log format: text, json, zap
//	-v string     log level: debug, info, warn, error
//	-c, -config   config file (already consumed by Load, declared so parsing accepts it)
func (c *Config) FlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("goalkeeper", flag.ContinueOnError)

	fs.StringVar(&c.APIBaseURL, "a", c.APIBaseURL, "API base URL")
	fs.StringVar(&c.DBPath, "d", c.DBPath, "path of the local database")
	fs.DurationVar(&c.RequestTimeout, "t", c.RequestTimeout, "request timeout")
	fs.DurationVar(&c.OnlineCheckInterval, "i", c.OnlineCheckInterval, "online check interval")
	fs.StringVar(&c.LogFormat, "l", c.LogFormat, "log format (text, json, zap)")
	fs.StringVar(&c.LogLevel, "v", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.configFile, "config", c.configFile, "path to config file (.json, .yaml)")
	fs.StringVar(&c.configFile, "c", c.configFile, "path to config file (short)")

	return fs
}
