/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package piece

import "errors"

var errPromotionMismatch = errors.New("piece: promotion_squares must be nonempty iff promo_vals is nonempty")
