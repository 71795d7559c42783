package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlookup/builder"
)

// ExampleFrom builds the canonical two-level census index and shows how a
// missing key at either level still resolves to the configured default.
func ExampleFrom() {
	type county struct {
		Code   int
		State  string
		County string
	}
	codes := []county{
		{Code: 28041, State: "MS", County: "Greene"},
		{Code: 1001, State: "AL", County: "Autauga"},
	}

	tbl, err := builder.From(codes).
		DefaultTo(county{Code: -1}).
		ByProperty("State", "County").
		BuildNested()
	if err != nil {
		fmt.Println(err)
		return
	}

	greene, _ := tbl.Get("MS").Hunt("Greene")
	fmt.Println(greene.Code)

	fmt.Println(tbl.Get("MS").Get("Nowhere").Code)
	fmt.Println(tbl.Get("ZZ").Get("Greene").Code)
	// Output:
	// 28041
	// -1
	// -1
}

// ExampleSelect projects a value out of each element before indexing.
func ExampleSelect() {
	type county struct {
		Code   int
		County string
	}
	codes := []county{
		{Code: 28041, County: "Greene"},
		{Code: 1001, County: "Autauga"},
	}

	tbl, err := builder.Select(codes, func(c county) (int, error) { return c.Code, nil }).
		ByProperty("County").
		BuildSingle()
	if err != nil {
		fmt.Println(err)
		return
	}

	code, _ := tbl.Hunt("Autauga")
	fmt.Println(code)
	// Output:
	// 1001
}
