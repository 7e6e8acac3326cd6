package main

import (
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/robalobadob/kluro/internal/config"
	"github.com/robalobadob/kluro/internal/daily"
	"github.com/robalobadob/kluro/internal/store"
	"github.com/robalobadob/kluro/internal/tui"
	"github.com/robalobadob/kluro/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	savePath := flag.String("save", cfg.SaveFile, "saved game file (default: user config dir)")
	printShare := flag.Bool("share", false, "print today's result and exit")
	flag.Parse()

	if *savePath == "" {
		if *savePath, err = store.DefaultFilePath(); err != nil {
			fail(err)
		}
	}

	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile, cfg.PlainWords)
	if err != nil {
		fail(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		fail(err)
	}
	epoch, err := daily.ParseEpoch(cfg.Epoch, loc)
	if err != nil {
		fail(err)
	}

	opt := tui.Options{
		Selector: daily.Selector{Epoch: epoch, Words: list.Words(), Location: loc},
		Words:    list,
		Store:    store.NewFileStore(*savePath),
	}

	if *printShare {
		text, err := tui.ShareText(opt)
		if err != nil {
			fail(err)
		}
		fmt.Print(text)
		return
	}
	if err := tui.Run(opt); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "kluro:", err)
	os.Exit(1)
}
