// Package builder_test shared fixtures for the builder test suite.
//
// The fixture mirrors the canonical use case: US census county codes keyed
// by state and county names. Values are small, comparable structs so tests
// can assert whole-record equality.
package builder_test

// countyCode is one census record: a numeric county code plus the state
// and county names it is keyed by.
type countyCode struct {
	Code   int
	State  string
	County string
}

// Label is a niladic accessor used to exercise method-based properties.
func (c countyCode) Label() string { return c.State + "/" + c.County }

// defaultCode is the stand-in record used as the configured leaf default.
var defaultCode = countyCode{Code: -1, State: "??", County: "Unknown"}

// censusCodes has unique (State, County) pairs; safe under DuplicateFail.
var censusCodes = []countyCode{
	{Code: 28041, State: "MS", County: "Greene"},
	{Code: 28067, State: "MS", County: "Jones"},
	{Code: 1001, State: "AL", County: "Autauga"},
	{Code: 1003, State: "AL", County: "Baldwin"},
	{Code: 56045, State: "WY", County: "Weston"},
}

// dupStates collides on State (for single-level duplicate policies);
// input order matters: 100 arrives before 200.
var dupStates = []countyCode{
	{Code: 100, State: "MS", County: "Greene"},
	{Code: 200, State: "MS", County: "Jones"},
	{Code: 300, State: "AL", County: "Autauga"},
}

// dupComposite collides on the full (State, County) path.
var dupComposite = []countyCode{
	{Code: 28041, State: "MS", County: "Greene"},
	{Code: 99999, State: "MS", County: "Greene"},
}

func byState(c countyCode) (any, error)  { return c.State, nil }
func byCounty(c countyCode) (any, error) { return c.County, nil }

func selectCode(c countyCode) (int, error) { return c.Code, nil }
