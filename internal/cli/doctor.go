package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/suf-labs/suf-gen/internal/config"
	"github.com/suf-labs/suf-gen/internal/gitinfo"
	"github.com/suf-labs/suf-gen/internal/installer"
	"github.com/suf-labs/suf-gen/internal/manifest"
	"github.com/suf-labs/suf-gen/internal/runner"
)

// projectManifest is checked when doctor runs inside a generated project.
const projectManifest = "package.json"

var doctorYAML bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorYAML, "yaml", false, "Print the report as YAML")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools a generated project needs",
	Long: `Report the package manager version against package_manager_min_version,
whether Node.js and git are available, the author a new project would get,
and, when run inside a project, whether its package.json is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		rep := buildDoctorReport(cmd.Context(), runner.Exec{}, afero.NewOsFs(), config.Current())

		if doctorYAML {
			data, err := yaml.Marshal(rep)
			if err != nil {
				return fmt.Errorf("marshaling report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		printDoctorReport(cmd.OutOrStdout(), rep)
		return nil
	},
}

type doctorReport struct {
	ConfigFile     string        `yaml:"config_file"`
	PackageManager packageCheck  `yaml:"package_manager"`
	Node           toolCheck     `yaml:"node"`
	Git            gitCheck      `yaml:"git"`
	Project        *projectCheck `yaml:"project,omitempty"`
}

type packageCheck struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version,omitempty"`
	Minimum   string `yaml:"minimum"`
	Satisfies bool   `yaml:"satisfies"`
	Error     string `yaml:"error,omitempty"`
}

type toolCheck struct {
	Version string `yaml:"version,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

type gitCheck struct {
	Version string `yaml:"version,omitempty"`
	Author  string `yaml:"author,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

type projectCheck struct {
	Name     string   `yaml:"name,omitempty"`
	Snowpack bool     `yaml:"snowpack"`
	Suf      bool     `yaml:"suf"`
	Issues   []string `yaml:"issues,omitempty"`
}

func buildDoctorReport(ctx context.Context, r runner.Runner, fs afero.Fs, s config.Settings) doctorReport {
	rep := doctorReport{ConfigFile: config.FilePath()}

	inst := &installer.Installer{
		Runner: r,
		Settings: installer.Settings{
			PackageManager: s.PackageManager,
			MinVersion:     s.PackageManagerMin,
		},
	}
	v := inst.CheckVersion(ctx)
	rep.PackageManager = packageCheck{
		Name:      v.Name,
		Version:   v.Version,
		Minimum:   v.Minimum,
		Satisfies: v.Satisfies,
	}
	if v.Err != nil {
		rep.PackageManager.Error = v.Err.Error()
	}

	rep.Node = toolVersion(ctx, r, "node")
	rep.Node.Version = strings.TrimPrefix(rep.Node.Version, "v")

	git := toolVersion(ctx, r, "git")
	rep.Git = gitCheck{
		Version: strings.TrimPrefix(git.Version, "git version "),
		Error:   git.Error,
	}
	if git.Error == "" && s.GitIdentity {
		rep.Git.Author, _ = gitinfo.Author(ctx, r)
	}

	if ok, _ := afero.Exists(fs, projectManifest); ok {
		rep.Project = checkProject(fs)
	}
	return rep
}

// toolVersion runs "<name> --version".
func toolVersion(ctx context.Context, r runner.Runner, name string) toolCheck {
	res, err := r.Run(ctx, name, []string{"--version"}, runner.Opts{})
	switch {
	case err != nil:
		return toolCheck{Error: err.Error()}
	case res.ExitCode != 0:
		return toolCheck{Error: fmt.Sprintf("%s --version exited with status %d", name, res.ExitCode)}
	}
	return toolCheck{Version: strings.TrimSpace(res.Stdout)}
}

func checkProject(fs afero.Fs) *projectCheck {
	pc := &projectCheck{}

	result, err := manifest.Project.ValidateFile(fs, projectManifest)
	if err != nil {
		pc.Issues = append(pc.Issues, err.Error())
		return pc
	}
	for _, issue := range result.Issues {
		pc.Issues = append(pc.Issues, issue.String())
	}

	pkg, err := manifest.ParseFile(fs, projectManifest)
	if err != nil {
		pc.Issues = append(pc.Issues, err.Error())
		return pc
	}
	pc.Name = pkg.Name
	pc.Snowpack = pkg.UsesSnowpack()
	pc.Suf = pkg.UsesSuf()
	return pc
}

func printDoctorReport(w io.Writer, rep doctorReport) {
	fmt.Fprintf(w, "Config: %s\n", rep.ConfigFile)

	fmt.Fprintln(w, "Package manager:")
	pm := rep.PackageManager
	switch {
	case pm.Error != "":
		fmt.Fprintf(w, "  [MISS] %s: %s\n", pm.Name, pm.Error)
	case !pm.Satisfies:
		fmt.Fprintf(w, "  [WARN] %s %s is older than %s\n", pm.Name, pm.Version, pm.Minimum)
	default:
		fmt.Fprintf(w, "  [ OK ] %s %s (>= %s)\n", pm.Name, pm.Version, pm.Minimum)
	}

	fmt.Fprintln(w, "Node.js:")
	if rep.Node.Error != "" {
		fmt.Fprintf(w, "  [MISS] node: %s\n", rep.Node.Error)
	} else {
		fmt.Fprintf(w, "  [ OK ] node %s\n", rep.Node.Version)
	}

	fmt.Fprintln(w, "Git:")
	if rep.Git.Error != "" {
		fmt.Fprintf(w, "  [MISS] git: %s\n", rep.Git.Error)
	} else {
		fmt.Fprintf(w, "  [ OK ] git %s\n", rep.Git.Version)
		if rep.Git.Author != "" {
			fmt.Fprintf(w, "  [ OK ] author: %s\n", rep.Git.Author)
		} else {
			fmt.Fprintln(w, "  [INFO] no author, package.json will omit it")
		}
	}

	if rep.Project == nil {
		return
	}
	fmt.Fprintf(w, "Project %s:\n", rep.Project.Name)
	if len(rep.Project.Issues) == 0 {
		fmt.Fprintln(w, "  [ OK ] package.json is valid")
		return
	}
	fmt.Fprintf(w, "  [FAIL] %d package.json issue(s):\n", len(rep.Project.Issues))
	for _, issue := range rep.Project.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
}
