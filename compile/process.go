// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package compile

import (
	"os"
	"path/filepath"

	"nanocc/errs"
	"nanocc/utils"
)

// preprocess runs "cpp -E -P" on path ahead of lexing, matching the
// original implementation's ordering (main.rs's preprocess runs before
// any token is produced; spec.md is silent on the ordering, so this
// module follows the original rather than inventing one). The result is
// written alongside the source as "<base>.i".
func (d *Driver) preprocess(path string) (string, error) {
	out := trimExt(path) + ".i"
	wd := filepath.Dir(path)
	d.Log.WithFields(map[string]interface{}{"cpp": path}).Info("preprocessing")
	if _, err := utils.ExecuteCmd(wd, "cpp", "-E", "-P", path, "-o", out); err != nil {
		return "", errs.WrapIO(err, "preprocessing %s", path)
	}
	return out, nil
}

// assembleAndLink runs "cc" to assemble asmPath and link it into an
// executable named base (or base+".exe" is left to the platform's own
// convention — this module targets System V AMD64 only, per spec.md's
// Non-goals).
func (d *Driver) assembleAndLink(asmPath, base string) (string, error) {
	wd := filepath.Dir(asmPath)
	out, err := utils.ExecuteCmd(wd, "cc", asmPath, "-o", base)
	if err != nil {
		return "", errs.WrapIO(err, "assembling and linking %s", asmPath)
	}
	return out, nil
}

func (d *Driver) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errs.WrapIO(err, "reading %s", path)
	}
	return string(data), nil
}

// writeFile writes data to path, never leaving a partial file behind on
// failure (spec.md §7's "no partial outputs" guarantee).
func (d *Driver) writeFile(path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		os.Remove(path)
		return errs.WrapIO(err, "writing %s", path)
	}
	return nil
}

func trimExt(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)]
}
