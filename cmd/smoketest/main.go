// Command smoketest parses a single number against the embedded corpus and
// prints its parsed fields, validity, classification, and every formatting
// mode. It exists to eyeball a corpus change or a parser fix against a real
// number without writing a throwaway test.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/malonaz/telephony"
	"github.com/malonaz/telephony/internal/obslog"
)

type opts struct {
	Region string `long:"region" short:"r" description:"Default region for numbers without a leading +" default:""`
	Number string `long:"number" short:"n" description:"Number to parse" required:"true"`
	obslog.Opts
}

func main() {
	var o opts
	if _, err := flags.Parse(&o); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log, err := obslog.NewLogger(&o.Opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Info("corpus loaded", "version", telephony.CorpusVersion())

	n, err := telephony.Parse(telephony.RegionID(o.Region), o.Number)
	if err != nil {
		log.Error("parse failed", "input", o.Number, "region", o.Region, "error", err)
		os.Exit(1)
	}

	f := telephony.NewFormatter(n)
	fmt.Printf("country code:   %d\n", n.CountryCode())
	fmt.Printf("national:       %d\n", n.NationalNumber())
	fmt.Printf("extension:      %q\n", n.Extension())
	fmt.Printf("cc source:      %s\n", n.CountryCodeSource())
	fmt.Printf("valid:          %t\n", telephony.IsValidNumber(n))
	fmt.Printf("possible:       %s\n", telephony.IsPossibleNumber(n))
	fmt.Printf("type:           %s\n", telephony.NumberType(n))
	fmt.Printf("e164:           %s\n", f.Format(telephony.E164))
	fmt.Printf("national fmt:   %s\n", f.Format(telephony.National))
	fmt.Printf("international:  %s\n", f.Format(telephony.International))
	fmt.Printf("rfc3966:        %s\n", f.Format(telephony.Rfc3966))
}
