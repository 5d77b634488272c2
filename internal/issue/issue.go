// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

// Id identifies a known build problem.
type Id int

const (
	MissingFilesId Id = iota + 1
	VersionNotFoundId
	ConfigLoadFailedId
	ArchiveFailedId
	DuplicateEntryId
)

// MarkdownMsg is Markdown text rendered for the terminal.
type MarkdownMsg string

// Issue is guidance shown when a known problem stops a build.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guidance with a glamour style ("dark", "light",
// "notty", or "auto").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	missingFilesIssue = &Issue{
		id: MissingFilesId,
		mdMsg: `
# Some addon files are missing

The archive was not created because files listed in the build are not on disk.

## Things you can try
- Run the build from the addon's project directory, or pass it with ` + "`--dir`" + `
- Check the spelling and case of each file name
- If the file list changed, update ` + "`runtime_files`" + ` or ` + "`dist_files`" + ` in addonpack.cue:
~~~cue
runtime_files: ["a.toc", "a.lua"]
dist_files: ["README.md", "LICENSE"]
~~~`,
	}

	versionNotFoundIssue = &Issue{
		id: VersionNotFoundId,
		mdMsg: `
# Could not determine the addon version

The version is read from the metadata file (package.json by default).

## Things you can try
- Make sure the file exists and contains a version field:
~~~json
{ "name": "br-5secrule", "version": "1.2.0" }
~~~
- Point ` + "`version_file`" + ` in addonpack.cue at another metadata file`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Could not load addonpack.cue

## Things you can try
- Generate a fresh configuration to compare against:
~~~
$ addonpack config init --force
~~~
- Remove addonpack.cue to build with the defaults`,
	}

	archiveFailedIssue = &Issue{
		id: ArchiveFailedId,
		mdMsg: `
# Writing the archive failed

A partially written archive may remain in the output directory. It is
replaced on the next successful build.

## Things you can try
- Check free disk space and write permissions on the output directory
- Make sure no other program holds the archive open`,
	}

	duplicateEntryIssue = &Issue{
		id: DuplicateEntryId,
		mdMsg: `
# Two addon files share a name

The archive stores every file at the top level, so files in different
folders with the same name would overwrite each other.

## Things you can try
- Rename one of the files and update ` + "`runtime_files`" + ` or ` + "`dist_files`" + ` in addonpack.cue
- Remove the file that is not needed from the list`,
	}

	issues = map[Id]*Issue{
		missingFilesIssue.id:     missingFilesIssue,
		versionNotFoundIssue.id:  versionNotFoundIssue,
		configLoadFailedIssue.id: configLoadFailedIssue,
		archiveFailedIssue.id:    archiveFailedIssue,
		duplicateEntryIssue.id:   duplicateEntryIssue,
	}
)

// Get returns the issue for id, or nil when none is registered.
func Get(id Id) *Issue {
	return issues[id]
}
