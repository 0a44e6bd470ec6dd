// package emailaddr validates email address syntax and produces a canonical form for comparison.
//
// Validation is purely syntactic: no DNS or deliverability checks are made.
package emailaddr

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	maxLocalLength   = 64
	maxAddressLength = 254
	maxDomainLength  = 253
	maxLabelLength   = 63
)

var (
	ErrInvalid = errors.New("invalid email address")

	// Reserved names that can never receive mail.
	specialUseDomains = []string{"arpa", "invalid", "local", "localhost", "onion", "test"}
)

// atext from RFC 5322 section 3.2.3, excluding ALPHA and DIGIT.
const atextSymbols = "!#$%&'*+-/=?^_`{|}~"

// Validate checks the syntax of addr and returns its canonical form: the NFC-normalized local part with its case
// preserved, "@", and the lowercased domain. Domains must be ASCII.
//
// Errors wrap [ErrInvalid].
func Validate(addr string) (string, error) {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return "", invalid(addr, "missing @")
	}

	local := norm.NFC.String(addr[:at])
	domain := strings.ToLower(addr[at+1:])

	if err := validateLocal(local); err != nil {
		return "", invalid(addr, err.Error())
	}
	if err := validateDomain(domain); err != nil {
		return "", invalid(addr, err.Error())
	}

	canonical := local + "@" + domain
	if len(canonical) > maxAddressLength {
		return "", invalid(addr, fmt.Sprintf("longer than %d characters", maxAddressLength))
	}

	if _, err := mail.ParseAddress(canonical); err != nil {
		return "", invalid(addr, err.Error())
	}

	return canonical, nil
}

// IsValid reports whether addr passes [Validate].
func IsValid(addr string) bool {
	_, err := Validate(addr)
	return err == nil
}

// Fold lowercases and trims an address so that differently cased local parts compare equal.
func Fold(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Domain returns the part of addr after the last "@", or "" when there is none.
func Domain(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return ""
	}
	return addr[at+1:]
}

func invalid(addr, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalid, addr, reason)
}

func validateLocal(local string) error {
	switch {
	case local == "":
		return errors.New("empty local part")
	case len(local) > maxLocalLength:
		return fmt.Errorf("local part longer than %d characters", maxLocalLength)
	case strings.HasPrefix(local, "."):
		return errors.New("local part starts with a period")
	case strings.HasSuffix(local, "."):
		return errors.New("local part ends with a period")
	case strings.Contains(local, ".."):
		return errors.New("local part has consecutive periods")
	}

	for _, r := range local {
		if !isAtext(r) && r != '.' {
			return fmt.Errorf("local part contains %q", r)
		}
	}
	return nil
}

func validateDomain(domain string) error {
	if domain == "" {
		return errors.New("empty domain")
	}
	if len(domain) > maxDomainLength {
		return fmt.Errorf("domain longer than %d characters", maxDomainLength)
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return errors.New("domain must contain a period")
	}

	for _, label := range labels {
		switch {
		case label == "":
			return errors.New("domain has an empty label")
		case len(label) > maxLabelLength:
			return fmt.Errorf("domain label longer than %d characters", maxLabelLength)
		case strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-"):
			return fmt.Errorf("domain label %q starts or ends with a hyphen", label)
		}
		for _, r := range label {
			if !isLDH(r) {
				return fmt.Errorf("domain contains %q", r)
			}
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return errors.New("top-level domain too short")
	}
	for _, r := range tld {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("top-level domain %q is not alphabetic", tld)
		}
	}

	for _, d := range specialUseDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return fmt.Errorf("%q is a special-use domain", d)
		}
	}
	return nil
}

// isAtext also admits non-ASCII letters, digits and combining marks (RFC 6532).
func isAtext(r rune) bool {
	if r >= utf8.RuneSelf {
		return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
	}
	return isAlnum(r) || strings.ContainsRune(atextSymbols, r)
}

func isLDH(r rune) bool {
	return isAlnum(r) || r == '-'
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
