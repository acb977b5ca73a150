// Package shell implements the interactive citekit shell.
//
// The shell keeps its settings in an explicit Context instead of process
// wide state. Commands are looked up in a Registry by their longest
// matching word prefix, so multi-word commands such as "get locale" work
// alongside single-word ones:
//
//	sh := shell.New(shell.NewContext(csl.DefaultConfig()))
//	_ = sh.Exec("get locale", os.Stdout) // en-US
//	_ = sh.Exec("pages '10--20,5'", os.Stdout)
//
// Lines are split into words with POSIX shell quoting rules.
package shell
