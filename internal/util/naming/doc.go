// Package naming provides consistent naming functions for the demo's
// Azure resources.
//
// Resource names follow the pattern azvmlab-{type}-{suffix}, where the
// suffix is randomized per run so repeated or concurrent runs never
// collide inside the same subscription. Virtual machine names stay short
// (wvm-/lvm- prefixes) because the Windows computer name is limited to
// 15 characters.
package naming
