// SPDX-License-Identifier: Unlicense OR MIT

// Command contacts demonstrates delegated click handling over a recycled
// contact list. Click support is attached to the list exactly once; the
// code presenting each row knows nothing about listeners. Click a contact
// to select it, long-press one for a context menu. Deleting from the menu
// rebinds every row below the deleted contact, which is why callbacks
// receive positions resolved at event time.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~gioverse/click"
	clickdebug "git.sr.ht/~gioverse/click/debug"
	"git.sr.ht/~gioverse/click/profile"
	"git.sr.ht/~gioverse/click/rowlist"

	lorem "github.com/drhodes/golorem"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/font/gofont"
)

var (
	profileOpt = flag.String("profile", "none", profile.Usage)
	debugHits  = flag.Bool("debug", false, "outline the input area of each row")
)

// Type alias common layout types for legibility.
type (
	C = layout.Context
	D = layout.Dimensions
)

// th is the active theme object.
var th = material.NewTheme(gofont.Collection())

// DoneIcon marks the selected contact.
var DoneIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionDone)
	return icon
}()

// PeopleIcon decorates the top bar.
var PeopleIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.SocialPeople)
	return icon
}()

func main() {
	flag.Parse()
	go func() {
		w := app.NewWindow(
			app.Title("Contacts"),
			app.Size(unit.Dp(400), unit.Dp(600)),
		)
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	rec := profile.Start(profile.Kind(*profileOpt))
	defer rec.Stop()

	ui := NewUI()
	ui.Debug = *debugHits

	var ops op.Ops
	for event := range w.Events() {
		switch event := event.(type) {
		case system.DestroyEvent:
			return event.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, event)
			rec.Frame(gtx)
			ui.Layout(gtx)
			event.Frame(gtx.Ops)
		}
	}
	return nil
}

// Contact models a single entry of the list.
type Contact struct {
	Name    string
	Company string
	// Color is the avatar color, and Luminance its perceived
	// brightness, used to pick a readable label color atop it.
	Color     color.NRGBA
	Luminance float64
}

// ToNRGBA converts a colorful.Color to the nearest representable
// color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// genContacts synthesizes n random contacts.
func genContacts(n int) []Contact {
	contacts := make([]Contact, 0, n)
	for i := 0; i < n; i++ {
		c := ToNRGBA(colorful.FastHappyColor().Clamped())
		contacts = append(contacts, Contact{
			Name:      title(lorem.Word(3, 8)) + " " + title(lorem.Word(5, 10)),
			Company:   title(lorem.Word(4, 12)),
			Color:     c,
			Luminance: (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255,
		})
	}
	return contacts
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// UI manages the state for the entire application's UI.
type UI struct {
	Contacts []Contact
	// List recycles the interactive row state and reports the row
	// lifecycle that click delegation follows.
	List rowlist.List
	// Modal hosts the context menu atop the rest of the ui.
	Modal component.ModalState
	// Menu is the context menu available on contacts.
	Menu               component.MenuState
	CallBtn, DeleteBtn widget.Clickable
	// Selected is the position of the selected contact, or
	// click.NoPosition when nothing is selected.
	Selected int
	// Target is the position the context menu is acting on.
	Target int
	// menuRequested defers opening the modal to the point in the frame
	// where its show time is known.
	menuRequested bool
	// Status is the last action taken, displayed in the top bar.
	Status string
	// Debug outlines row input areas when set.
	Debug bool
}

// NewUI constructs a UI and populates it with synthetic contacts.
func NewUI() *UI {
	ui := &UI{
		Contacts: genContacts(250),
		Selected: click.NoPosition,
		Target:   click.NoPosition,
	}
	ui.Modal.VisibilityAnimation.Duration = time.Millisecond * 250
	ui.Menu = component.MenuState{
		Options: []func(gtx C) D{
			component.MenuItem(th, &ui.CallBtn, "Call").Layout,
			component.MenuItem(th, &ui.DeleteBtn, "Delete").Layout,
		},
	}

	click.AddTo(&ui.List).
		SetOnItemClickListener(func(c click.Container, position int, row click.RowView) {
			ui.Selected = position
			ui.Status = "Selected " + ui.Contacts[position].Name
		}).
		SetOnItemLongClickListener(func(c click.Container, position int, row click.RowView) bool {
			ui.Target = position
			ui.menuRequested = true
			return true
		})

	return ui
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	ui.update(gtx)
	paint.Fill(gtx.Ops, th.Palette.Bg)
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(ui.layoutTopbar),
				layout.Flexed(1, func(gtx C) D {
					return ui.List.Layout(gtx, th, len(ui.Contacts), ui.layoutContact)
				}),
			)
		}),
		layout.Expanded(ui.layoutModal),
	)
}

// update applies the context menu actions chosen on the previous frame.
func (ui *UI) update(gtx C) {
	if ui.CallBtn.Clicked() {
		if ui.Target >= 0 && ui.Target < len(ui.Contacts) {
			ui.Status = "Calling " + ui.Contacts[ui.Target].Name
		}
		ui.Modal.ToggleVisibility(gtx.Now)
	}
	if ui.DeleteBtn.Clicked() {
		ui.removeContact(ui.Target)
		ui.Modal.ToggleVisibility(gtx.Now)
	}
}

// removeContact deletes the contact at position. Rows presenting later
// contacts are silently rebound to their shifted positions.
func (ui *UI) removeContact(position int) {
	if position < 0 || position >= len(ui.Contacts) {
		return
	}
	ui.Status = "Deleted " + ui.Contacts[position].Name
	ui.Contacts = append(ui.Contacts[:position], ui.Contacts[position+1:]...)
	switch {
	case ui.Selected == position:
		ui.Selected = click.NoPosition
	case ui.Selected > position:
		ui.Selected--
	}
	ui.Target = click.NoPosition
}

func (ui *UI) layoutTopbar(gtx C) D {
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				sideLength := gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.X = sideLength
				gtx.Constraints.Max.Y = sideLength
				gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
				return PeopleIcon.Layout(gtx, th.Fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.H6(th, "Contacts").Layout),
			layout.Flexed(1, func(gtx C) D {
				return layout.E.Layout(gtx, material.Body2(th, ui.Status).Layout)
			}),
		)
	})
}

// layoutContact presents one contact row. Note that it never consults the
// row for a position: index is authoritative for this frame only.
func (ui *UI) layoutContact(gtx C, row *rowlist.Row, index int) D {
	content := func(gtx C) D {
		return ui.layoutContactContent(gtx, ui.Contacts[index], index)
	}
	if ui.Debug {
		return clickdebug.HitArea(gtx, row.Pressed(), content)
	}
	return content(gtx)
}

var selectedBg = color.NRGBA{R: 0xD0, G: 0xE2, B: 0xF4, A: 0xFF}

func (ui *UI) layoutContactContent(gtx C, contact Contact, index int) D {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			if index == ui.Selected {
				paint.FillShape(gtx.Ops, selectedBg,
					clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Op())
			}
			return D{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						return layoutAvatar(gtx, contact)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Flexed(1, func(gtx C) D {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(material.Body1(th, contact.Name).Layout),
							layout.Rigid(material.Body2(th, contact.Company).Layout),
						)
					}),
					layout.Rigid(func(gtx C) D {
						if index != ui.Selected {
							return D{}
						}
						sideLength := gtx.Dp(unit.Dp(24))
						gtx.Constraints.Max.X = sideLength
						gtx.Constraints.Max.Y = sideLength
						gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
						return DoneIcon.Layout(gtx, th.Fg)
					}),
				)
			})
		}),
	)
}

// layoutAvatar draws a colored disc with the contact's initial, choosing
// the label color by the disc's luminance.
func layoutAvatar(gtx C, contact Contact) D {
	sideLength := gtx.Dp(unit.Dp(36))
	size := image.Pt(sideLength, sideLength)
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx C) D {
			surface := clip.UniformRRect(image.Rectangle{Max: size}, sideLength/2)
			paint.FillShape(gtx.Ops, contact.Color, surface.Op(gtx.Ops))
			return D{Size: size}
		}),
		layout.Expanded(func(gtx C) D {
			label := material.Body1(th, strings.ToUpper(contact.Name[:1]))
			label.Color = color.NRGBA{A: 255}
			if contact.Luminance < .5 {
				label.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			return layout.Center.Layout(gtx, label.Layout)
		}),
	)
}

// layoutModal lays out the context menu scrim and surface.
func (ui *UI) layoutModal(gtx C) D {
	if ui.menuRequested {
		ui.menuRequested = false
		ui.Modal.Show(gtx.Now, ui.layoutMenu)
	}
	if ui.Modal.Clicked() {
		ui.Modal.ToggleVisibility(gtx.Now)
	}
	return component.Modal(th, &ui.Modal).Layout(gtx)
}

func (ui *UI) layoutMenu(gtx C) D {
	return layout.Center.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min = image.Point{}
		return component.Menu(th, &ui.Menu).Layout(gtx)
	})
}
