package router

import "math/big"

// basis point denominator
const bpsDenominator = 10000

// ComputeFee splits amount into the protocol fee and the net dispatch
// amount: fee = amount * rateBps / 10000 with floor division, so
// fee + net == amount always holds. Pure function; the rate ceiling is
// enforced where the rate is configured.
func ComputeFee(amount *big.Int, rateBps uint64) (fee, net *big.Int) {
	fee = new(big.Int).Mul(amount, new(big.Int).SetUint64(rateBps))
	fee.Div(fee, big.NewInt(bpsDenominator))
	net = new(big.Int).Sub(amount, fee)
	return fee, net
}
