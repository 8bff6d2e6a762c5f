package main

import (
	"fmt"
	"os"

	"github.com/saicharanbm/finTrack/cmd/add"
	"github.com/saicharanbm/finTrack/cmd/edit"
	"github.com/saicharanbm/finTrack/cmd/export"
	"github.com/saicharanbm/finTrack/cmd/list"
	"github.com/saicharanbm/finTrack/cmd/parse"
	"github.com/saicharanbm/finTrack/cmd/remove"
	"github.com/saicharanbm/finTrack/cmd/root"
	"github.com/saicharanbm/finTrack/cmd/summary"
)

func init() {
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
