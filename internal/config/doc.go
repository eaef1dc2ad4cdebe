// Package config provides configuration parsing for domkit projects.
//
// The configuration is stored in domkit.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "reports",
//	  "specs": "specs",
//	  "output": "dist",
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "liveReload": true,
//	    "pollInterval": "500ms",
//	    "metricsPath": "/metrics"
//	  },
//	  "render": {
//	    "pretty": false,
//	    "doctype": "html",
//	    "title": "Reports",
//	    "styleSheets": ["/static/table.css"]
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "reports/",
//	    "region": "eu-west-1"
//	  },
//	  "tables": {
//	    "strictData": false
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.Address())
package config
