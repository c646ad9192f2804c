package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/flow"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/report"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/solver"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/util"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/validate"
)

func main() {
	boardFile := flag.String("i", "", "board JSON file")
	tolerance := flag.Float64("tol", 0, "terminal merge tolerance (0 = default)")
	sweepSpec := flag.String("sweep", "", "DC sweep as batteryID:start:stop:step")
	plotFile := flag.String("plot", "", "write sweep plot PNG to this file")
	flag.Parse()

	if *boardFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*boardFile)
	if err != nil {
		log.Fatalf("reading board file: %v", err)
	}
	var elements []schematic.Element
	if err := json.Unmarshal(data, &elements); err != nil {
		log.Fatalf("parsing board file: %v", err)
	}

	printValidation(validate.Check(elements))

	sol := solver.SolveDC(elements, *tolerance)
	printSolution(sol)

	decision := flow.ShouldEnableCurrentFlow(elements)
	fmt.Printf("\nCurrent flow: animate=%v (%s)", decision.ShouldAnimate, decision.Reason)
	if decision.CurrentAmps > 0 {
		fmt.Printf(", peak %s", util.FormatValueFactor(decision.CurrentAmps, "A"))
	}
	fmt.Println()

	if *sweepSpec != "" {
		runSweep(elements, *sweepSpec, *tolerance, *plotFile)
	}
}

func printValidation(result validate.Result) {
	fmt.Printf("Validation: %s (valid=%v)\n", result.Status, result.IsValid)
	fmt.Printf("  %d components, %d wires, %d grounds, %d batteries, %d nodes, %d groups\n",
		result.Stats.Components, result.Stats.Wires, result.Stats.Grounds,
		result.Stats.Batteries, result.Stats.Nodes, result.Stats.ConnectedGroups)
	for _, issue := range result.Issues {
		fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Kind, issue.Message)
	}
}

func printSolution(sol solver.Solution) {
	fmt.Printf("\nSolver status: %s\n", sol.Status)
	if sol.Status != solver.StatusSolved {
		return
	}

	nodes := make([]int, 0, len(sol.NodeVoltages))
	for n := range sol.NodeVoltages {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	fmt.Println("Node voltages:")
	for _, n := range nodes {
		marker := ""
		if n == sol.Reference {
			marker = " (reference)"
		}
		fmt.Printf("  V(%d) = %s%s\n", n, util.FormatValueFactor(sol.NodeVoltages[n], "V"), marker)
	}

	ids := make([]string, 0, len(sol.ElementCurrents))
	for id := range sol.ElementCurrents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Println("Element currents:")
	for _, id := range ids {
		cur := sol.ElementCurrents[id]
		fmt.Printf("  I(%s) = %s [%s]\n", id, util.FormatValueFactor(cur.Amps, "A"), cur.Direction)
	}

	if len(sol.SegmentCurrents) > 0 {
		fmt.Println("Wire segment currents:")
		for _, seg := range sol.SegmentCurrents {
			fmt.Printf("  I(%s[%d]) = %s\n", seg.Wire, seg.Segment, util.FormatValueFactor(seg.Amps, "A"))
		}
	}
}

func runSweep(elements []schematic.Element, spec string, tolerance float64, plotFile string) {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		log.Fatalf("invalid sweep spec %q, want batteryID:start:stop:step", spec)
	}
	start, err1 := strconv.ParseFloat(parts[1], 64)
	stop, err2 := strconv.ParseFloat(parts[2], 64)
	step, err3 := strconv.ParseFloat(parts[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		log.Fatalf("invalid sweep range in %q", spec)
	}

	points, err := solver.SweepBattery(elements, parts[0], start, stop, step, tolerance)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	fmt.Printf("\nDC sweep of %s:\n", parts[0])
	for _, pt := range points {
		if pt.Solution.Status != solver.StatusSolved {
			fmt.Printf("  V=%-9s %s\n", util.FormatValueFactor(pt.Volts, "V"), pt.Solution.Status)
			continue
		}
		cur := pt.Solution.ElementCurrents[parts[0]]
		fmt.Printf("  V=%-9s I=%s\n",
			util.FormatValueFactor(pt.Volts, "V"), util.FormatValueFactor(cur.Amps, "A"))
	}

	if plotFile != "" {
		if err := report.WriteSweepPNG(points, parts[0], plotFile); err != nil {
			log.Fatalf("plotting sweep: %v", err)
		}
		fmt.Printf("Sweep plot written to %s\n", plotFile)
	}
}
