package cli

import (
	"context"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lambda/arena"
	"github.com/ardnew/lambda/cli/cmd"
	"github.com/ardnew/lambda/pkg"
)

// CLI is the lambda command tree.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Repl    cmd.Repl    `cmd:"" default:"withargs" help:"Read and evaluate statements interactively"`
	Eval    cmd.Eval    `cmd:""             help:"Evaluate each argument as one statement"`
	Tokens  cmd.Tokens  `cmd:""             help:"Print the tokens of a statement"`
	Tree    cmd.Tree    `cmd:""             help:"Print the parsed tree of a statement"`
	Init    cmd.Init    `cmd:""             help:"Write the current settings to the configuration file"`
	Version cmd.Version `cmd:""             help:"Print the version"`
}

// Run parses args and executes the selected command. The exit function is
// called by kong after printing help or a usage error.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	// Logging flags take effect before kong reports anything.
	cli.Log.scan(args)

	parser, err := cli.parser(ctx, exit)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// No-op unless built with the pprof tag and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// parser builds the kong parser for cli. Flag defaults are overridden, in
// increasing priority, by config.json, config.yaml and the command line.
func (c *CLI) parser(ctx context.Context, exit func(int)) (*kong.Kong, error) {
	yamlPath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier: yamlPath,
		cmd.CacheIdentifier:  cacheDir(),
		"arena":              strconv.Itoa(arena.DefaultCapacity),
	}.
		CloneWith(c.Log.vars()).
		CloneWith(c.Pprof.vars())

	return kong.New(c,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{c.Log.group(), c.Pprof.group()}),
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			Tree:                true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve, yamlPath),
		vars,
	)
}
