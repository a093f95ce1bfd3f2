// Package matrix provides the dense matrix type used for clique-transition
// matrices and the eigenvalue routines that reduce them to a scalar.
//
// Dense is row-major and bounds-checked. A 0×0 Dense is legal: it is the
// matrix of an empty clique catalog and has dominant eigenvalue 0.
//
// Eigenvalues of general (non-symmetric) real matrices are computed with
// gonum's mat.Eigen; only the eigenvalues are requested.
package matrix
