// Copyright 2026 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parser

func merge(dest, src any) any {
	dstMap, dstOK := dest.(map[string]any)
	srcMap, srcOK := src.(map[string]any)

	if !dstOK || !srcOK {
		// primitive values, or a value replacing a whole section, override
		return src
	}

	for k, v := range srcMap {
		if old, present := dstMap[k]; present && old != nil {
			dstMap[k] = merge(old, v)
		} else {
			dstMap[k] = v
		}
	}

	return dstMap
}
