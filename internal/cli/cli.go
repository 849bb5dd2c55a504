// Package cli parses pwgen-style command-line arguments into a generation
// run. The surface is deliberately compatible with pwgen: combined short
// flags like -rXYZ, GNU-style --remove-chars=XYZ, and bare positionals for
// length and count.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pwgen/pwgen-go/internal/generator"
)

const (
	DefaultLength = 8
	DefaultCount  = 160
)

// Options is the fully resolved CLI configuration.
type Options struct {
	Gen      generator.Config
	Columns  bool
	SeedFile string
	Help     bool
}

// Parse resolves args (without the program name) into Options. It returns
// an error for unknown flags, missing or malformed values, and invalid
// positionals; the caller is expected to print it and exit non-zero.
func Parse(args []string) (Options, error) {
	opts := Options{
		Gen:     generator.Config{Length: DefaultLength, Count: DefaultCount},
		Columns: true,
	}

	var noCapitalize, noNumerals bool
	var positionals []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-c", "--capitalize":
			// Required is already the default; the flag exists for symmetry.
		case "-A", "--no-capitalize":
			noCapitalize = true
		case "-n", "--numerals":
		case "-0", "--no-numerals":
			noNumerals = true
		case "-y", "--symbols":
			opts.Gen.Symbols = true
		case "-s", "--secure":
			opts.Gen.Mode = generator.ModeUniform
		case "-B", "--ambiguous":
			opts.Gen.ExcludeAmbiguous = true
		case "-v", "--no-vowels":
			opts.Gen.ExcludeVowels = true
		case "-C":
			opts.Columns = true
		case "-1":
			opts.Columns = false
		case "-h", "--help":
			opts.Help = true
		default:
			switch {
			case strings.HasPrefix(arg, "-r") || strings.HasPrefix(arg, "--remove-chars"):
				value, consumed, err := flagValue(arg, "-r", "--remove-chars", args[i+1:])
				if err != nil {
					return Options{}, err
				}
				i += consumed
				opts.Gen.Exclude = []byte(value)
			case strings.HasPrefix(arg, "-H") || strings.HasPrefix(arg, "--seed-file"):
				value, consumed, err := flagValue(arg, "-H", "--seed-file", args[i+1:])
				if err != nil {
					return Options{}, err
				}
				i += consumed
				opts.SeedFile = value
			case !strings.HasPrefix(arg, "-"):
				positionals = append(positionals, arg)
			default:
				return Options{}, fmt.Errorf("unknown option: %s", arg)
			}
		}
	}

	// Uppercase and digits are required by default; forbid always wins.
	opts.Gen.Upper = generator.PolicyRequired
	if noCapitalize {
		opts.Gen.Upper = generator.PolicyForbidden
	}
	opts.Gen.Digits = generator.PolicyRequired
	if noNumerals {
		opts.Gen.Digits = generator.PolicyForbidden
	}

	if len(positionals) > 2 {
		return Options{}, fmt.Errorf("too many arguments")
	}
	if len(positionals) >= 1 {
		n, err := strconv.Atoi(positionals[0])
		if err != nil || n < 1 {
			return Options{}, fmt.Errorf("invalid password length: %s", positionals[0])
		}
		opts.Gen.Length = n
	}
	if len(positionals) == 2 {
		n, err := strconv.Atoi(positionals[1])
		if err != nil || n < 0 {
			return Options{}, fmt.Errorf("invalid password count: %s", positionals[1])
		}
		opts.Gen.Count = n
	}

	return opts, nil
}

// flagValue extracts the value of a flag that accepts one: inline after the
// short form (-rXYZ), after = on the long form (--remove-chars=XYZ), or as
// the next argument. It reports how many following arguments it consumed.
func flagValue(arg, short, long string, rest []string) (string, int, error) {
	if strings.HasPrefix(arg, short) && len(arg) > len(short) {
		return arg[len(short):], 0, nil
	}
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		if arg[:eq] != long {
			return "", 0, fmt.Errorf("unknown option: %s", arg)
		}
		return arg[eq+1:], 0, nil
	}
	if arg != short && arg != long {
		return "", 0, fmt.Errorf("unknown option: %s", arg)
	}
	if len(rest) == 0 {
		return "", 0, fmt.Errorf("missing value for %s", arg)
	}
	return rest[0], 1, nil
}

// Usage returns the help text.
func Usage() string {
	return `Usage: pwgen [ OPTIONS ] [ pw_length ] [ num_pw ]

Options supported by pwgen:
  -c or --capitalize
    Include at least one capital letter in the password
  -A or --no-capitalize
    Don't include capital letters in the password
  -n or --numerals
    Include at least one number in the password
  -0 or --no-numerals
    Don't include numbers in the password
  -y or --symbols
    Include at least one special symbol in the password
  -r <chars> or --remove-chars=<chars>
    Remove characters from the set of characters to generate passwords
  -s or --secure
    Generate completely random passwords
  -B or --ambiguous
    Don't include ambiguous characters in the password
  -H <file> or --seed-file=<file>
    Derive the random stream from the file's contents (reproducible output)
  -h or --help
    Print a help message
  -C
    Print the generated passwords in columns
  -1
    Don't print the generated passwords in columns
  -v or --no-vowels
    Do not use any vowels so as to avoid accidental nasty words
`
}
