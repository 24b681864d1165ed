// Command placementctl browses and edits placement portal collections from
// the terminal. Lists are fetched whole and then searched, filtered, sorted
// and paged locally, the same way the web views do it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/justsurfingit/placement-portal/internal/remote"
	"github.com/justsurfingit/placement-portal/internal/views"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultURL = "http://localhost:8080/api"

// Config keys. The environment supplies them as PORTAL_URL, PORTAL_TOKEN
// and PORTAL_COMPANY_ID.
const (
	cfgKeyURL       = "url"
	cfgKeyToken     = "token"
	cfgKeyCompanyID = "company-id"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(cfgKeyURL, defaultURL)

	root := &cobra.Command{
		Use:   "placementctl",
		Short: "placementctl works with the campus placement portal API",
		Long: `placementctl lists, shows and edits placement portal records
(companies, job openings, applications, interviews, offers, users and
notifications) through the portal's REST API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(cfgKeyURL, defaultURL, "portal API base URL (env PORTAL_URL)")
	root.PersistentFlags().String(cfgKeyToken, "", "bearer token (env PORTAL_TOKEN)")
	root.PersistentFlags().String(cfgKeyCompanyID, "", "company scope sent as Company-ID (env PORTAL_COMPANY_ID)")
	bindFlags(v, root.PersistentFlags(), cfgKeyURL, cfgKeyToken, cfgKeyCompanyID)

	newClient := func() *remote.Client {
		return remote.NewClient(v.GetString(cfgKeyURL), remote.AuthContext{
			Token:     v.GetString(cfgKeyToken),
			CompanyID: v.GetString(cfgKeyCompanyID),
		})
	}

	root.AddCommand(
		newListCmd(newClient),
		newGetCmd(newClient),
		newCreateCmd(newClient),
		newUpdateCmd(newClient),
		newDeleteCmd(newClient),
		newGmailLoginCmd(),
	)
	return root
}

// bindFlags lets a flag, when set, override the environment for key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) {
	for _, k := range keys {
		// Lookup cannot fail for flags registered just above.
		_ = v.BindPFlag(k, fs.Lookup(k))
	}
}

func checkResource(resource string) error {
	if !views.Known(resource) {
		return fmt.Errorf("unknown resource %q (valid: %s)", resource, strings.Join(views.Resources(), ", "))
	}
	return nil
}
