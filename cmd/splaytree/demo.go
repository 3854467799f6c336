package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/predoehl/splaytree/splay"
)

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "build fixed key layouts, probe them, and emit DOT renderings",
	Subcommands: []*cli.Command{
		demoProbeCmd,
		demoChainCmd,
	},
}

var demoProbeCmd = &cli.Command{
	Name:  "probe",
	Usage: "even keys 2..30 in a near-complete layout, probed and rendered",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "key",
			Usage: "probe a single key instead of sweeping 1..31",
			Value: -1,
		},
		&cli.BoolFlag{
			Name:  "descending",
			Usage: "insert the keys in descending order instead of the layered order",
		},
	},
	Action: runDemoProbe,
}

// buildEvenKeys populates a tree with the even keys 2..30. The layered
// order inserts leaves first, then parents, then the upper levels, which
// leaves 16 at the root of a nearly complete shape. The descending order
// produces a left chain for the same key set.
func buildEvenKeys(descending bool) *splay.Tree[int, string] {
	t := splay.New[int, string]()
	if descending {
		for k := 30; k > 0; k -= 2 {
			t.Insert(k, fmt.Sprintf("v%d", k))
		}
		return t
	}
	for _, k := range []int{2, 6, 10, 14, 18, 22, 26, 30, 4, 12, 20, 28, 8, 24, 16} {
		t.Insert(k, fmt.Sprintf("v%d", k))
	}
	return t
}

func runDemoProbe(cctx *cli.Context) error {
	descending := cctx.Bool("descending")

	tree := buildEvenKeys(descending)
	if err := writeDotFile("grover.dot", tree); err != nil {
		return err
	}

	if k := cctx.Int("key"); k >= 0 {
		r := tree.Find(k)
		if err := writeDotFile("henry.dot", tree); err != nil {
			return err
		}
		if r.Found {
			fmt.Println("found!")
		} else {
			fmt.Println("NOT FOUND")
		}
		return tree.HealthCheck()
	}

	// Sweep every key 1..31 against a fresh tree each time, so one
	// probe's splaying never affects the next. Even keys must be found,
	// odd keys must not.
	for j := 1; j < 32; j++ {
		tree := buildEvenKeys(descending)
		r := tree.Find(j)
		if err := writeDotFile(fmt.Sprintf("henry%d.dot", j+100), tree); err != nil {
			return err
		}
		if r.Found != (j%2 == 0) {
			return fmt.Errorf("probe %d: found=%v, want %v", j, r.Found, j%2 == 0)
		}
		if r.Found && r.Key != j {
			return fmt.Errorf("probe %d: found key %d", j, r.Key)
		}
		if err := tree.HealthCheck(); err != nil {
			return fmt.Errorf("probe %d: %w", j, err)
		}
	}
	return nil
}

var demoChainCmd = &cli.Command{
	Name:   "chain",
	Usage:  "1000 ascending keys, then probes that fold the chain in half",
	Action: runDemoChain,
}

func runDemoChain(*cli.Context) error {
	tree := splay.New[int, string]()
	for k := 1; k <= 1000; k++ {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}
	if err := writeDotFile("stringy2a.dot", tree); err != nil {
		return err
	}

	suffix := 'b'
	for _, k := range []int{1, 2, 4, 8, 12, 24, 40, 56} {
		if !tree.Find(k).Found {
			return fmt.Errorf("key %d not found", k)
		}
		if err := writeDotFile(fmt.Sprintf("stringy2%c.dot", suffix), tree); err != nil {
			return err
		}
		suffix++
	}
	return tree.HealthCheck()
}
