package rupavali_test

import (
	"context"
	"fmt"
	"log"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// ExampleNew shows the default offline setup: embedded dhatupatha and the
// table-backed engine.
func ExampleNew() {
	ctx := context.Background()
	app, err := rupavali.New(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, d := range app.SearchDhatus("gam") {
		fmt.Printf("%s %s (%s)\n", d.Code, d.Clean, d.Artha)
	}
	// Output:
	// 01.1137 gamx~ (gatO)
}

// ExampleApp_TinantaTables derives the present-tense table of the root BU
// and reads one cell out of it.
func ExampleApp_TinantaTables() {
	ctx := context.Background()
	app, err := rupavali.New(ctx)
	if err != nil {
		log.Fatal(err)
	}

	tables, err := app.TinantaTables(ctx, "01.0001", vyakarana.Options{})
	if err != nil {
		log.Fatal(err)
	}

	present := tables[0].Paradigms[0]
	cell := present.Cell(vyakarana.Prathama, vyakarana.Eka)
	fmt.Printf("%s %s: %s\n", present.Lakara, present.Prayoga, cell.Choices[0].Text)
	// Output:
	// law kartari: Bavati
}

// ExampleApp_Convert renders an SLP1 form in Devanagari.
func ExampleApp_Convert() {
	app, err := rupavali.New(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(app.Convert("Bavati", vyakarana.SchemeSLP1, vyakarana.SchemeDevanagari))
	// Output:
	// भवति
}
