package main

import "github.com/mordilloSan/go-filelogger/internal/cli"

// Usage: ./filelog -f ./app.log -l INFO "hello" "world"
//
//	echo "from stdin" | ./filelog -f ./app.log --tag WARN
func main() {
	cli.Execute()
}
