package main

import (
	"os"

	"github.com/graeme-hill/rpncalc-go/lib"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	// logger instance
	log = logrus.New()
)

// customized via Makefile
var (
	Version = "development"
)

func main() {
	cfg := DefaultConfig()

	configFile := kingpin.Flag("config", "Calculator configuration in YML format.").ExistingFile()
	debug := kingpin.Flag("debug", "Debug mode (more log messages).").Short('d').Bool()
	logging := kingpin.Flag("logging", "Logging level.").String()
	showRPN := kingpin.Flag("show-rpn", "Print the RPN form next to each result.").Bool()

	tokensCmd := kingpin.Command("tokens", "Print the tokens of an expression.")
	tokensExpr := tokensCmd.Arg("expression", "Infix expression.").Required().String()

	compileCmd := kingpin.Command("compile", "Convert an expression to Reverse Polish Notation.")
	compileExpr := compileCmd.Arg("expression", "Infix expression.").Required().String()

	evalCmd := kingpin.Command("eval", "Evaluate expressions.")
	evalExprs := evalCmd.Arg("expression", "Infix expressions.").Required().Strings()

	replCmd := kingpin.Command("repl", "Read expressions from standard input, one per line.")

	kingpin.Version(Version)
	command := kingpin.Parse()

	// command line flags override the configuration file
	if err := ParseConfig(*configFile, &cfg); err != nil {
		kingpin.Fatalf("%s", err)
	}
	if *debug {
		cfg.Debug = true
	}
	if len(*logging) != 0 {
		cfg.Logging = *logging
	}
	if *showRPN {
		cfg.ShowRPN = true
	}

	level, err := cfg.LogLevel()
	if err != nil {
		kingpin.FatalUsage("%s", err)
	}
	log.Level = level
	lib.SetLogLevel(level)

	log.WithFields(logrus.Fields{
		"version":  Version,
		"command":  command,
		"config":   *configFile,
		"show-rpn": cfg.ShowRPN,
	}).Debug("starting calculator...")

	switch command {
	case tokensCmd.FullCommand():
		err = runTokens(os.Stdout, *tokensExpr)
	case compileCmd.FullCommand():
		err = runCompile(os.Stdout, *compileExpr)
	case evalCmd.FullCommand():
		err = runEval(os.Stdout, cfg, *evalExprs)
	case replCmd.FullCommand():
		err = runRepl(os.Stdin, os.Stdout, cfg)
	}

	if err != nil {
		log.WithError(err).WithField("command", command).Fatal("failed")
	}
}
