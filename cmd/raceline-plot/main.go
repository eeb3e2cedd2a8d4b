// Command raceline-plot renders diagnostic plots from a converted
// global-waypoints document and prints trajectory statistics. It only
// reads the document; nothing is written back.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/trackside-data/raceline.convert/internal/raceline"
	"github.com/trackside-data/raceline.convert/internal/raceline/visual"
	"github.com/trackside-data/raceline.convert/internal/version"
)

func main() {
	jsonPath := flag.String("json", "", "Path to global_waypoints.json")
	outputDir := flag.String("output", "plots", "Directory for the rendered plots")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *jsonPath == "" {
		flag.Usage()
		log.Fatal("waypoints document is required")
	}

	doc, err := raceline.LoadDocument(*jsonPath)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	printStats(doc)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	p := visual.Plotter{Doc: doc, OutputDir: *outputDir}
	written, err := p.RenderAll()
	if err != nil {
		log.Fatalf("Plotting failed: %v", err)
	}
	for _, path := range written {
		log.Printf("Saved plot: %s", path)
	}
}

func printStats(doc *raceline.GlobalWaypoints) {
	leftX, _ := doc.TrackboundsMarkers.Trace(raceline.NamespaceBoundsLeft)
	rightX, _ := doc.TrackboundsMarkers.Trace(raceline.NamespaceBoundsRight)
	log.Printf("Loaded %d waypoints per trajectory", len(doc.TrajWpntsIQP.Wpnts))
	log.Printf("Track boundaries - left: %d points, right: %d points", len(leftX), len(rightX))

	trajectories := []struct {
		label string
		wpts  []raceline.Waypoint
	}{
		{"Centerline", doc.CenterlineWaypoints.Wpnts},
		{"IQP", doc.TrajWpntsIQP.Wpnts},
		{"SP", doc.TrajWpntsSP.Wpnts},
	}
	for _, tr := range trajectories {
		stats := raceline.SummarizeSpeeds(tr.wpts)
		log.Printf("%-10s - min: %.2f m/s, max: %.2f m/s, avg: %.2f m/s, est lap time: %.2fs",
			tr.label, stats.Min, stats.Max, stats.Mean, raceline.EstimateLapTime(tr.wpts))
	}

	log.Printf("Track length: %.2f m", raceline.TrackLength(doc.TrajWpntsIQP.Wpnts))
}
