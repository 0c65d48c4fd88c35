// Package mht_test provides examples demonstrating how to drive an Engine
// through a scan.
package mht_test

import (
	"context"
	"fmt"

	"github.com/arfken-labs/mht/mht"
	"github.com/arfken-labs/mht/model"
)

// ExampleEngine_Scan runs a single scan over one report whose model offers
// no new-track candidate state at all, so the only outcome is a false
// alarm.
func ExampleEngine_Scan() {
	m := &fakeModel{acceptNew: false}
	e := mht.New(func() model.Model { return m }, &fakeVerifier{},
		mht.WithMaxGHypos(1))

	e.AddReports([]model.Report{fakeReport{falseAlarmLL: 5}})
	active, err := e.Scan(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("active=%v in_use=%v\n", active, e.IsInUse())
	// Output:
	// active=false in_use=false
}
