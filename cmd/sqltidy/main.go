package main

import (
	"context"
	"log"
	"os"

	"github.com/sqltidy/sqltidy/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	v := &cmd.Version{
		Version:   version,
		Commit:    commit,
		Timestamp: date,
	}

	if err := cmd.Run(context.Background(), v, os.Args); err != nil {
		log.Fatal(err)
	}
}
