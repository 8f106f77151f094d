package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"djbdns2bind/internal/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and maps its error to an exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetContext(ctx)

	executed, err := root.ExecuteC()
	if err == nil {
		return exitOK
	}

	var exitErr ExitCodeError
	if !errors.As(err, &exitErr) {
		// cobra reports unknown subcommands and stray arguments here
		exitErr = ExitCodeError{Code: exitUsage, Err: err}
	}

	if executed != nil && executed.Context() != nil {
		ctx = executed.Context()
	}
	logging.FromContext(ctx).Debug(ctx, "run failed", "exitCode", exitErr.Code, "trace", fmt.Sprintf("%+v", exitErr.Err))

	if exitErr.Err != nil {
		root.PrintErrln("Error:", exitErr.Err)
	}
	return exitErr.Code
}
