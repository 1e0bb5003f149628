// Package rank orders fetched issues by how well they match a profile.
//
// Scoring is cosine similarity between the profile embedding and each
// issue's combined title and body embedding, rounded to four decimal
// places. The sort is stable so equally scored issues keep the order
// they were fetched in.
package rank
