// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notes is the client-side core of the notes application.
//
// A [Store] keeps the last snapshot received from a live [Feed] together
// with the category and tag vocabularies derived from it. A [Filter] narrows
// that snapshot down to what the user is looking for, and a [Coordinator]
// owns the menu and dialog state and turns user intents into [Mutator]
// calls.
//
// Nothing here patches the collection locally: every change made through
// the Coordinator becomes visible only when the backend pushes the next
// snapshot.
package notes
