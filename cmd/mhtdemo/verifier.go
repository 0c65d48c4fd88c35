package main

import (
	"fmt"

	"github.com/arfken-labs/mht/model"
	"github.com/arfken-labs/mht/track"
)

// event is one committed track decision, recorded for the demo's final
// report table.
type event struct {
	scan    int
	trackID track.TrackID
	kind    string
	detail  string
}

// recordingVerifier implements mht.Verifier by appending every callback to
// events, tagged with the scan it arrived at (curScan is advanced by main
// between Scan calls, matching how a host would know "what scan is this").
type recordingVerifier struct {
	events  []event
	curScan int
}

func (v *recordingVerifier) StartTrack(trackID track.TrackID, timeStamp int, state any, report model.Report) {
	v.events = append(v.events, event{v.curScan, trackID, "start", positionOf(state)})
}

func (v *recordingVerifier) ContinueTrack(trackID track.TrackID, timeStamp int, state any, report model.Report) {
	v.events = append(v.events, event{v.curScan, trackID, "continue", positionOf(state)})
}

func (v *recordingVerifier) SkipTrack(trackID track.TrackID, timeStamp int, state any) {
	v.events = append(v.events, event{v.curScan, trackID, "skip", positionOf(state)})
}

func (v *recordingVerifier) EndTrack(trackID track.TrackID, timeStamp int) {
	v.events = append(v.events, event{v.curScan, trackID, "end", ""})
}

func (v *recordingVerifier) FalseAlarm(timeStamp int, report model.Report) {
	v.events = append(v.events, event{v.curScan, track.NoTrack, "false_alarm", positionOfReport(report)})
}

func positionOf(state any) string {
	if s, ok := state.(demoState); ok {
		return fmt.Sprintf("%.2f", s.pos)
	}
	return ""
}

func positionOfReport(report model.Report) string {
	if r, ok := report.(demoReport); ok {
		return fmt.Sprintf("%.2f", r.pos)
	}
	return ""
}
