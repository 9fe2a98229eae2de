package main

import (
	"os"

	"github.com/siyuan-infoblox/wiseimport/pkg/cmd"
	"github.com/siyuan-infoblox/wiseimport/pkg/version"
)

func main() {
	if err := cmd.Execute(version.Get()); err != nil {
		os.Exit(1)
	}
}
