// Package config holds the runtime configuration of pwstrength: where
// passwords come from, how results are reported and the minimum strength
// a run must meet. It also loads the optional .pwstrength YAML file whose
// defaults are applied underneath explicit command-line flags.
package config
