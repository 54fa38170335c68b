package main

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/declgo/cdecl"
)

// loadConfig applies settings from an INI configuration file onto opts.
// A missing file is not an error; command-line flags override whatever the
// file sets.
//
//	[cdecl]
//	lang = c++17
//	east-const = true
//	graphs = digraphs
func loadConfig(path string, opts *cdecl.Options) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	sec := cfg.Section("cdecl")

	if name := sec.Key("lang").String(); name != "" {
		lang := cdecl.FindLang(name)
		if lang == cdecl.LangNone {
			return fmt.Errorf("config %s: unknown language %q", path, name)
		}
		opts.Lang = lang
	}
	opts.EastConst = sec.Key("east-const").MustBool(opts.EastConst)
	opts.AltTokens = sec.Key("alt-tokens").MustBool(opts.AltTokens)
	opts.ExplicitInt = sec.Key("explicit-int").MustBool(opts.ExplicitInt)
	if !sec.Key("semicolon").MustBool(true) {
		opts.NoSemicolon = true
	}

	switch graphs := sec.Key("graphs").String(); graphs {
	case "", "none":
	case "digraphs":
		opts.Graph = cdecl.GraphDi
	case "trigraphs":
		opts.Graph = cdecl.GraphTri
	default:
		return fmt.Errorf("config %s: unknown graphs mode %q", path, graphs)
	}
	return nil
}
