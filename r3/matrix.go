package r3

import "github.com/agdturner/ccg-vector3D-sub001/exactrat"

// Small fixed-size rational matrices. Only construction and exact
// determinants are provided; that is all the kernel's coplanarity and
// intersection-parameter computations need.

type Matrix3 [3][3]exactrat.ExactRat

type Matrix4 [4][4]exactrat.ExactRat

type Matrix5 [5][5]exactrat.ExactRat

// Matrix3FromRows builds a Matrix3 with the given vectors as rows.
func Matrix3FromRows(r0, r1, r2 Vector) Matrix3 {
	return Matrix3{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}
}

// Matrix3FromCols builds a Matrix3 with the given vectors as columns.
func Matrix3FromCols(v0, v1, v2 Vector) Matrix3 {
	return Matrix3{
		{v0.X, v1.X, v2.X},
		{v0.Y, v1.Y, v2.Y},
		{v0.Z, v1.Z, v2.Z},
	}
}

func (m Matrix3) Row(i int) Vector {
	return Vector{m[i][0], m[i][1], m[i][2]}
}

func (m Matrix3) Col(i int) Vector {
	return Vector{m[0][i], m[1][i], m[2][i]}
}

func (m Matrix3) Transpose() Matrix3 {
	return Matrix3FromRows(m.Col(0), m.Col(1), m.Col(2))
}

func (m Matrix3) Det() exactrat.ExactRat {
	a := m[0][0].Mul(m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1])))
	b := m[0][1].Mul(m[1][0].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][0])))
	c := m[0][2].Mul(m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0])))
	return a.Sub(b).Add(c)
}

// minor3 returns the 3x3 matrix left after deleting row 0 and column
// col of m.
func (m Matrix4) minor3(col int) Matrix3 {
	var r Matrix3
	for i := 1; i < 4; i++ {
		k := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			r[i-1][k] = m[i][j]
			k++
		}
	}
	return r
}

// Det computes the exact determinant by cofactor expansion along the
// first row.
func (m Matrix4) Det() exactrat.ExactRat {
	var det exactrat.ExactRat
	for col := 0; col < 4; col++ {
		term := m[0][col].Mul(m.minor3(col).Det())
		if col&1 == 1 {
			term = term.Neg()
		}
		det = det.Add(term)
	}
	return det
}

func (m Matrix5) minor4(col int) Matrix4 {
	var r Matrix4
	for i := 1; i < 5; i++ {
		k := 0
		for j := 0; j < 5; j++ {
			if j == col {
				continue
			}
			r[i-1][k] = m[i][j]
			k++
		}
	}
	return r
}

// Det computes the exact determinant by cofactor expansion along the
// first row.
func (m Matrix5) Det() exactrat.ExactRat {
	var det exactrat.ExactRat
	for col := 0; col < 5; col++ {
		term := m[0][col].Mul(m.minor4(col).Det())
		if col&1 == 1 {
			term = term.Neg()
		}
		det = det.Add(term)
	}
	return det
}
