// Command raceline-convert turns a racing-line CSV export into an
// F1Tenth-style map bundle: the global waypoints document plus the map
// georeference, overtaking-sector and speed-scaling configuration files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/trackside-data/raceline.convert/internal/raceline"
	"github.com/trackside-data/raceline.convert/internal/version"
)

func main() {
	var conv raceline.Converter
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.StringVar(&conv.CSVPath, "csv", "", "Path to the racing-line CSV export")
	flag.StringVar(&conv.MapName, "map", "marina", "Name of the output map")
	flag.StringVar(&conv.OutputDir, "output", "maps", "Directory the map bundle is written under")
	flag.StringVar(&conv.ImageSource, "image", "", "Optional track image copied as <map>.png")
	flag.Float64Var(&conv.LapTime, "lap-time", 0, "Optimizer lap time in seconds (0 integrates it from the racing line)")
	flag.BoolVar(&conv.WriteReport, "report", false, "Also write an interactive report.html")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if conv.CSVPath == "" {
		flag.Usage()
		log.Fatal("CSV file is required")
	}
	if _, err := os.Stat(conv.CSVPath); os.IsNotExist(err) {
		log.Fatalf("CSV file not found: %s", conv.CSVPath)
	}

	if err := conv.Run(); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
}
