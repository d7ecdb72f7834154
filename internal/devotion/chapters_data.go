package devotion

// Bundled Psalm chapters: English (NLT) and Tagalog (MBB) full text.
// Extend this map as the reading plan advances.
var psalmChapters = map[int]ChapterTextEntry{
	67: {
		English: `1 May God be merciful and bless us. May his face smile with favor on us.
2 May your ways be known throughout the earth, your saving power among people everywhere.
3 May the nations praise you, O God. Yes, may all the nations praise you.
4 Let the whole world sing for joy, because you govern the nations with justice and guide the people of the whole world.
5 May the nations praise you, O God. Yes, may all the nations praise you.
6 Then the earth will yield its harvests, and God, our God, will richly bless us.
7 Yes, God will bless us, and people all over the world will fear him.`,
		Tagalog: `1 Pagpalain nawa tayo ng Diyos at kaawaan, at ang kanyang mukha ay lumiwanag sa atin.
2 Upang makilala sa lupa ang iyong daan, ang iyong pagliligtas sa lahat ng bansa.
3 Purihin ka ng mga bayan, O Diyos; purihin ka ng lahat ng mga bayan.
4 Magalak at umawit ng kagalakan ang mga bansa, sapagkat hinahatulan mo ang mga tao ng katuwiran, at pinapatnubayan mo ang mga bansa sa lupa.
5 Purihin ka ng mga bayan, O Diyos; purihin ka ng lahat ng mga bayan.
6 Ang lupa ay nagbigay ng kanyang bunga; pagpalain nawa tayo ng Diyos, ng ating Diyos.
7 Pagpalain nawa tayo ng Diyos, at matakot sa kanya ang lahat ng dulo ng lupa.`,
	},
	68: {
		English: `1 Rise up, O God, and scatter your enemies. Let those who hate God run for their lives.
2 Blow them away like smoke. Melt them like wax in a fire. Let the wicked perish in the presence of God.
3 But let the godly rejoice. Let them be glad in God's presence. Let them be filled with joy.
4 Sing praises to God and to his name! Sing loud praises to him who rides the clouds. His name is the LORD— rejoice in his presence!`,
		Tagalog: `1 Bumangon ka, O Diyos, at pangalatin mo ang iyong mga kaaway; tumakas sa harap mo ang mga napopoot sa iyo.
2 Kung paanong natatangay ang usok, gayon mo sila itaboy; kung paanong natutunaw ang pagkit sa harap ng apoy, gayon mamatay ang masasama sa harap ng Diyos.
3 Ngunit magalak ang mga matuwid; magsaya sila sa harap ng Diyos at mag-umapaw sa kagalakan.
4 Umawit kayo sa Diyos, awitan ninyo ang kanyang pangalan; ihanda ang daan para sa kanya na nakasakay sa mga ulap. Ang kanyang pangalan ay Panginoon; magalak kayo sa harap niya!`,
	},
}
