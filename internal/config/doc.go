// Package config loads the conversion settings of the cellsort command from
// environment variables.
//
// Every variable has a default suited to an en-US spreadsheet using the 1900
// date system, so an empty environment is a valid configuration.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx, err := cfg.Context(logger)
package config
