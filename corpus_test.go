package xorcrack

// testCorpus is a few kilobytes of ordinary English prose, long enough for
// the key-size statistics to converge. Recovery accuracy below a few KB of
// ciphertext is not guaranteed, so the cracking tests all work at this scale.
const testCorpus = `The practice of hiding a message by combining it with a repeated key is
far older than any computer. A clerk with a code book and a patient hand
could carry out the whole procedure at a desk, letter by letter, and for
a long while the method was believed to be beyond any attack. The belief
did not survive careful counting. Every language leans on some letters
far more than on others, and no amount of mechanical mixing with a short
repeated key can hide that lean completely. The key returns to the same
position again and again, and each return leaks a little more of the
pattern underneath.

The attack that follows from this observation is almost embarrassingly
direct. If the key repeats every five places, then every fifth letter of
the message has been disguised in exactly the same way. Gather those
letters into one pile, and the pile is simply a message in its own right,
hidden behind a single substitution that never changes. A single fixed
substitution is no obstacle at all: try each possibility in turn, and
keep the one that reads most like language. Do the same for each of the
five piles and the whole key falls out, one position at a time, with no
cleverness required beyond honest bookkeeping.

The only real question is the length of the key, and even that yields to
counting. Two stretches of text disguised with the same portion of key
differ from one another exactly as the underlying words differ, and words
in the same language resemble each other far more than arbitrary noise
resembles itself. Slice the message into blocks of a guessed length and
compare neighbouring blocks bit by bit. When the guess is wrong, the
comparison mixes unrelated portions of key into the count and the blocks
disagree at nearly half of every position. When the guess is right, the
key cancels out of the comparison entirely, and the disagreement drops to
the modest level that ordinary prose shows against ordinary prose. The
correct length announces itself as the low point in a simple table of
averages.

None of this requires luck, and very little of it requires judgement.
What it requires is data. A dozen letters tell you almost nothing about
which symbols a writer favours; a few thousand letters tell you nearly
everything. The counting argument is a statistical one, and statistics
need room to work. Given that room, the procedure is mechanical from end
to end: guess the length, split the text, pile up the positions, try the
candidates, keep the best, and read the answer. The cipher fails not
because any single step is brilliant, but because every step is cheap,
and the defender chose a scheme whose whole security rested on nobody
being willing to count.`
