package codegen

// C types of generated code. Every Haumea value is a NumericType; main alone
// returns EntryType so that the result is a valid program entry point.
const (
	NumericType = "long"
	EntryType   = "int"
)

// Prolog carries the runtime shim: display is the only routine a Haumea
// program can call without defining it.
const Prolog = `
/* Haumea prolog */
#include <stdio.h>

long display(long n) {
    printf("%ld\n", n);
    return 0;
}

/* End prolog */

/* Start compiled program */
`

const Epilog = `
/* End compiled program */
`

func returnType(name string) string {
	if name == "main" {
		return EntryType
	}
	return NumericType
}
