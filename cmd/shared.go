package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/internal/profile"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/scheme"
	"github.com/spf13/cobra"
)

// testKeyBase64 is a fixed, publicly known key for quick experimentation
// and documentation examples. It provides no confidentiality whatsoever;
// --testkey must never be used for anything but throwaway local testing.
const testKeyBase64 = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// addCodecFlags registers the flags enc/dec share for resolving a key and
// a format.
func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().String("key", "", "key in hex or base64 form")
	cmd.Flags().String("profile", "", "named profile to load the key from")
	cmd.Flags().Bool("testkey", false, "use the fixed, public, insecure testing key")
	cmd.Flags().String("format", "", "combined scheme:encoding, e.g. ob32:c32")
	cmd.Flags().String("scheme", "", "scheme short name, e.g. ob32")
	cmd.Flags().String("encoding", "", "encoding short name, e.g. c32")
	cmd.MarkFlagsMutuallyExclusive("format", "scheme")
	cmd.MarkFlagsMutuallyExclusive("format", "encoding")
	cmd.MarkFlagsMutuallyExclusive("key", "profile", "testkey")
}

// resolveKeychain picks the key source enc/dec were given: an explicit
// --key, a --profile name (looked up in the profile store), or --testkey.
func resolveKeychain(cmd *cobra.Command, store *profile.Store) (keychain.Keychain, error) {
	keyFlag, _ := cmd.Flags().GetString("key")
	profileFlag, _ := cmd.Flags().GetString("profile")
	testKey, _ := cmd.Flags().GetBool("testkey")

	switch {
	case testKey:
		return keychain.FromBase64(testKeyBase64)
	case keyFlag != "":
		return parseKey(keyFlag)
	case profileFlag != "":
		b64, err := store.ReadProfileKey(profileFlag)
		if err != nil {
			return keychain.Keychain{}, fmt.Errorf("loading profile %q: %w", profileFlag, err)
		}
		return keychain.FromBase64(b64)
	default:
		cfg, err := store.Config()
		if err != nil {
			return keychain.Keychain{}, err
		}
		b64, err := store.ReadProfileKey(cfg.ActiveProfile)
		if err != nil {
			return keychain.Keychain{}, fmt.Errorf("loading active profile %q: %w", cfg.ActiveProfile, err)
		}
		return keychain.FromBase64(b64)
	}
}

// parseKey accepts either a 128-char hex string or an 86-char base64
// string, per the two on-the-wire key input formats the spec defines.
func parseKey(s string) (keychain.Keychain, error) {
	if len(s) == 128 {
		return keychain.FromHex(s)
	}
	return keychain.FromBase64(s)
}

// resolveFormat picks the format enc/dec were given: a combined --format
// flag, individual --scheme/--encoding flags (defaulting whichever one is
// missing to the config file's default), or the config file's defaults
// entirely.
func resolveFormat(cmd *cobra.Command, cfg profile.Config) (format.Format, error) {
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		return format.Parse(f)
	}

	schemeFlag, _ := cmd.Flags().GetString("scheme")
	if schemeFlag == "" {
		schemeFlag = cfg.DefaultScheme
	}
	encodingFlag, _ := cmd.Flags().GetString("encoding")
	if encodingFlag == "" {
		encodingFlag = cfg.DefaultEncoding
	}

	s, err := scheme.Parse(schemeFlag)
	if err != nil {
		return format.Format{}, err
	}
	e, err := encoding.Parse(encodingFlag)
	if err != nil {
		return format.Format{}, err
	}
	return format.New(s, e), nil
}

// readInput returns args[0] if present, else reads all of stdin, in both
// cases trimming trailing whitespace. An empty result is returned without
// error; the enc and dec commands reject it.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimRight(args[0], " \t\r\n"), nil
	}
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var b strings.Builder
	for scanner.Scan() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(b.String(), " \t\r\n"), nil
}
