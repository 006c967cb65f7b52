/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "is outside its valid domain"

// ErrInvalidParams is the cause of every parameter validation failure.
var ErrInvalidParams = errors.New(fmt.Sprintf("parameter %s", invalidStr))

// ErrSourceRange is returned when an external uniform source yields
// a value outside [0, 1).
var ErrSourceRange = errors.New(fmt.Sprintf("external uniform %s", invalidStr))
