// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"path/filepath"
	"testing"

	"github.com/br5secrule/addonpack/internal/testutil"
)

func TestTOCVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "declared",
			content: "## Interface: 110002\n## Title: 5 Second Rule\n## Version: 1.2.0\n\nbr-5secrule.lua\n",
			want:    "1.2.0",
			wantOK:  true,
		},
		{
			name:    "indented with padding",
			content: "  ## Version:   2.0  \n",
			want:    "2.0",
			wantOK:  true,
		},
		{
			name:    "absent",
			content: "## Title: 5 Second Rule\nbr-5secrule.lua\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "a.toc")
			testutil.MustWriteFile(t, path, tt.content)

			got, ok, err := TOCVersion(path)
			if err != nil {
				t.Fatalf("TOCVersion() failed: %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("TOCVersion() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
