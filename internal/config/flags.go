package config

import "flag"

// BindFlags registers the shared flags on fs and returns the Config they
// populate once fs is parsed.
//
// Flags:
//
//	-s/-store      vault file path
//	-a/-algorithm  cipher algorithm
//	-c/-codec      serialization format
//	-log-level     zerolog level
//	-p             encrypt with a password
func BindFlags(fs *flag.FlagSet) *Config {
	cfg := &Config{}

	fs.StringVar(&cfg.Store, "s", "", "Vault file path")
	fs.StringVar(&cfg.Store, "store", "", "Vault file path (alias)")
	fs.StringVar(&cfg.Algorithm, "a", "", "Cipher algorithm")
	fs.StringVar(&cfg.Algorithm, "algorithm", "", "Cipher algorithm (alias)")
	fs.StringVar(&cfg.Codec, "c", "", "Codec: json, yaml, msgpack, bson, xml")
	fs.StringVar(&cfg.Codec, "codec", "", "Codec (alias)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.Encrypt, "p", false, "Encrypt with a password")

	return cfg
}
