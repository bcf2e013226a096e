// SPDX-License-Identifier: Unlicense OR MIT

package main

/*
This example shows the minimum wiring needed to receive item clicks from a
recycled row list: attach click support to the list once and register the
callbacks. No listener ever needs to be threaded through the code that
presents individual rows.
*/

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/click"
	"git.sr.ht/~gioverse/click/rowlist"
	lorem "github.com/drhodes/golorem"

	"gioui.org/font/gofont"
)

const itemCount = 1000

func main() {
	go func() {
		w := app.NewWindow(app.Title("Basic"))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	th := material.NewTheme(gofont.Collection())

	items := make([]string, itemCount)
	for i := range items {
		items[i] = fmt.Sprintf("%d: %s", i, lorem.Sentence(3, 8))
	}

	var l rowlist.List
	click.AddTo(&l).
		SetOnItemClickListener(func(c click.Container, position int, row click.RowView) {
			log.Println("clicked item", position)
		}).
		SetOnItemLongClickListener(func(c click.Container, position int, row click.RowView) bool {
			log.Println("long-clicked item", position)
			return true
		})

	var ops op.Ops
	for {
		e := <-w.Events()
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			l.Layout(gtx, th, len(items), func(gtx layout.Context, row *rowlist.Row, index int) layout.Dimensions {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, material.Body1(th, items[index]).Layout)
			})
			e.Frame(gtx.Ops)
		}
	}
}
