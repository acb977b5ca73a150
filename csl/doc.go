// Package csl wires a citation processor together from configuration and
// data providers.
//
// Core types:
//   - Config: processor settings loadable from YAML, TOML, JSON and the environment
//   - Builder: fluent construction of a Processor
//   - Processor: serves citation items with normalised page variables
//
// Example usage:
//
//	cfg, err := csl.LoadFile("citekit.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg.LoadFromEnv()
//
//	b, err := csl.BuilderFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//	proc, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	defer proc.Close()
//
//	item, _ := proc.Item("smith2020")
//	fmt.Println(item.Page, item.PageFirst, item.NumberOfPages)
//
// Page fields are normalised with bibtex.ParsePage. The parser never reads
// any of the configuration held here.
package csl
