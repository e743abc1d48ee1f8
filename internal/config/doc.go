// Package config loads djed configuration.
//
// The configuration is stored in djed.json or djed.yaml. Missing fields
// take their defaults, so an empty file is valid.
//
// # Configuration File Structure
//
//	{
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "namespace": "djed",
//	    "addr": "localhost:9090"
//	  },
//	  "tracing": {
//	    "tracerName": "github.com/vango-dev/djed"
//	  },
//	  "demo": {
//	    "name": "counter",
//	    "ticks": 3
//	  }
//	}
//
// The same document in YAML:
//
//	log:
//	  level: debug
//	  format: json
//	demo:
//	  name: todo
//
// # Usage
//
//	cfg, err := config.LoadFromDir(".")
//	if err != nil {
//	    cfg = config.Default()
//	}
package config
