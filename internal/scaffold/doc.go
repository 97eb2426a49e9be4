// Package scaffold materializes a new project on disk from a template. It
// powers the "fazrepo create" command: the project name is validated, the
// template is resolved, the directory tree and files are written under a
// fresh root, and every step is recorded in a Result. Per-item failures do
// not stop the run and nothing is rolled back.
package scaffold
